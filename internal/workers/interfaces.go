// Package workers provides a bounded pool for running independent jobs
// concurrently, such as resolving and downloading item artifacts.
package workers

import "context"

// Job is one unit of work run by a [Pool]. Implementations should return
// promptly once ctx is done.
//
// Example implementation:
//
//	job := func(ctx context.Context) error {
//	    return repo.DownloadFile(ctx, location, path)
//	}
type Job func(ctx context.Context) error
