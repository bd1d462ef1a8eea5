package queue

// ExtractRunMsg asks the worker to run extraction over one corpus shard.
// Source selects the shard loader: "s3" reads from the configured
// bucket, anything else from the local filesystem.
type ExtractRunMsg struct {
	RunID     string `json:"run_id"`
	ShardPath string `json:"shard_path"`
	Source    string `json:"source"`
}

// DeleteRunMsg asks the worker to drop a run's rows and its exported
// artifacts.
type DeleteRunMsg struct {
	RunID string `json:"run_id"`
}

// RunEventMsg is broadcast on the pubsub exchange when a run finishes.
type RunEventMsg struct {
	RunID  string `json:"run_id"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
