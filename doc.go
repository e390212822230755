// Package plainai is a loosely-typed Go client for the OpenAI REST API.
//
// Every endpoint returns the raw JSON body the server sent, wrapped in a
// [Result] with path-based projection helpers, instead of forcing a fixed
// response schema on the caller. Requests are built with per-endpoint
// descriptors whose fluent setters add optional fields; a field that is
// never set is never sent, and nothing is validated client-side — the
// server is the single authority on acceptable values.
//
// # Basic Usage
//
// Create a client and send a chat completion:
//
//	c := plainai.New(os.Getenv("OPENAI_API_KEY"))
//
//	req := plainai.NewChatRequest("gpt-4o", []plainai.Message{
//	    {Role: "user", Content: "What is the capital of France?"},
//	}).MaxTokens(200).Temperature(0.7)
//
//	res, err := c.Chat.Create(ctx, req)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Get("choices.0.message.content").String())
//
// # Results
//
// [Result.Get] walks the response with a gjson path; [Result.Decode]
// unmarshals into caller-defined types for stronger guarantees:
//
//	var out struct {
//	    Data []struct {
//	        Embedding []float64 `json:"embedding"`
//	    } `json:"data"`
//	}
//	res, err := c.Embeddings.Create(ctx, plainai.NewEmbeddingRequest("text-embedding-3-small", "hello"))
//	if err == nil {
//	    err = res.Decode(&out)
//	}
//
// # Errors
//
// Every failure is an [*Error] with an [ErrorKind]: ErrorTransport for network
// failures, ErrorHTTP for non-2xx responses (carrying the status and the
// server's error message), ErrorDecode for malformed success bodies, and
// ErrorIO when a local upload file cannot be read. The library performs
// exactly one network round trip per call and never retries; wrap calls
// with [github.com/spetersoncode/plainai/retry] when resilience is wanted:
//
//	res, err := retry.Do(ctx, retry.DefaultConfig(), func() (plainai.Result, error) {
//	    return c.Chat.Create(ctx, req)
//	})
//
// # File Uploads
//
// Image edits, audio transcription, and file uploads read local files and
// send multipart forms. The file is read before the request goes out, so an
// unreadable path fails without touching the network:
//
//	res, err := c.Files.Upload(ctx, "training.jsonl", "fine-tune")
//
// # Concurrency
//
// A [Client] is immutable after [New] and safe for concurrent use; calls
// share no mutable state. Cancellation is caller-driven through the
// context passed to each operation.
package plainai
