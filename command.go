package qtads

// Command is a document command produced by activating a link.
type Command struct {
	// Text is the command string, taken from the link's Href.
	Text string
	// Append places the text after any pending input instead of replacing
	// it.
	Append bool
	// NoEnter suppresses the automatic enter after the text is placed.
	NoEnter bool
}

// CommandSink receives activated link commands. Dispatch is fire-and-forget:
// the controller does not wait for or interpret a response.
type CommandSink interface {
	SubmitCommand(cmd Command)
}

// CommandFunc adapts a function to the CommandSink interface.
type CommandFunc func(Command)

// SubmitCommand calls f(cmd).
func (f CommandFunc) SubmitCommand(cmd Command) {
	f(cmd)
}

const defaultCommandLimit = 64

// CommandRecorder is a CommandSink that retains the most recent commands,
// oldest first. Useful for demos and tests.
type CommandRecorder struct {
	// Limit caps the retained commands; 0 means defaultCommandLimit.
	Limit int

	cmds []Command
}

// SubmitCommand appends cmd, evicting the oldest entries beyond the limit.
func (r *CommandRecorder) SubmitCommand(cmd Command) {
	limit := r.Limit
	if limit <= 0 {
		limit = defaultCommandLimit
	}
	r.cmds = append(r.cmds, cmd)
	if len(r.cmds) > limit {
		r.cmds = r.cmds[len(r.cmds)-limit:]
	}
}

// Commands returns a copy of the retained commands, oldest first.
func (r *CommandRecorder) Commands() []Command {
	out := make([]Command, len(r.cmds))
	copy(out, r.cmds)
	return out
}

// Last returns the most recent command, if any.
func (r *CommandRecorder) Last() (Command, bool) {
	if len(r.cmds) == 0 {
		return Command{}, false
	}
	return r.cmds[len(r.cmds)-1], true
}

// Len returns the number of retained commands.
func (r *CommandRecorder) Len() int {
	return len(r.cmds)
}

// Reset discards all retained commands.
func (r *CommandRecorder) Reset() {
	r.cmds = r.cmds[:0]
}
