// Package translation translates vocabulary words through interchangeable
// engines (the Google web endpoint, OpenAI, Gemini). The Adapter batches
// words into chunks, retries transient failures behind a circuit breaker,
// caches results for the lifetime of the process, and falls back to the
// original words when the service cannot deliver, so one bad word or a dead
// network never aborts a run.
package translation
