package cli

// Globals defines global flags available to all commands.
type Globals struct {
	Verbose   bool `short:"v" help:"Log decoded records and every rejection to stderr."`
	Telemetry bool `help:"Show timing telemetry for the replay."`
}

type Commands struct {
	Globals

	Replay ReplayCmd `cmd:"" default:"withargs" help:"Replay a transaction file and print the final account snapshot."`
	Watch  WatchCmd  `cmd:"" help:"Replay a transaction file again on every change."`
}
