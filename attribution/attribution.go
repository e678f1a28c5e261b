package attribution

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

const (
	// Message is reported to the host whenever a commit is blocked.
	Message = "BLOCKED: Remove AI/Claude attribution. Regenerate commit message without Co-Authored-By or 'Generated with' lines."

	// ExitBlock is the exit status that makes the host block the command.
	ExitBlock = 2

	// EventPermissionRequest expects a JSON decision instead of an exit status.
	EventPermissionRequest = "PermissionRequest"

	commitMarker = "git commit"
)

// DefaultPatterns are always checked, case-insensitively.
var DefaultPatterns = []string{
	`Co-Authored-By: Claude`,
}

var (
	eventNamePath = jp.MustParseString("$.hook_event_name")
	commandPath   = jp.MustParseString("$.tool_input.command")
)

// Event is the part of the hook payload the filter looks at.
type Event struct {
	Name    string
	Command string
}

// ParseEvent extracts the event name and command from a hook payload.
// Missing or non-string fields are left empty.
func ParseEvent(data []byte) (Event, error) {
	doc, err := oj.Parse(data)
	if err != nil {
		return Event{}, fmt.Errorf("failed to parse hook payload: %w", err)
	}
	name, _ := eventNamePath.First(doc).(string)
	command, _ := commandPath.First(doc).(string)
	return Event{Name: name, Command: command}, nil
}

// Filter holds the compiled denylist.
type Filter struct {
	patterns []*regexp.Regexp
}

// NewFilter compiles DefaultPatterns plus any extra patterns.
func NewFilter(extra ...string) (*Filter, error) {
	f := &Filter{}
	for _, p := range append(append([]string(nil), DefaultPatterns...), extra...) {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
		}
		f.patterns = append(f.patterns, re)
	}
	return f, nil
}

// Blocks reports whether command is a git commit matching the denylist.
func (f *Filter) Blocks(command string) bool {
	if !strings.Contains(command, commitMarker) {
		return false
	}
	for _, re := range f.patterns {
		if re.MatchString(command) {
			return true
		}
	}
	return false
}

type decision struct {
	Behavior string `json:"behavior"`
	Message  string `json:"message"`
}

type hookSpecificOutput struct {
	HookEventName string   `json:"hookEventName"`
	Decision      decision `json:"decision"`
}

type permissionResponse struct {
	HookSpecificOutput hookSpecificOutput `json:"hookSpecificOutput"`
}

// Run evaluates the payload read from stdin and returns the exit status the
// hook process should terminate with. An error means the payload could not
// be read or parsed.
func (f *Filter) Run(stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	data, err := io.ReadAll(stdin)
	if err != nil {
		return 1, fmt.Errorf("failed to read hook payload: %w", err)
	}
	event, err := ParseEvent(data)
	if err != nil {
		return 1, err
	}

	if !f.Blocks(event.Command) {
		return 0, nil
	}

	if event.Name == EventPermissionRequest {
		resp := permissionResponse{
			HookSpecificOutput: hookSpecificOutput{
				HookEventName: EventPermissionRequest,
				Decision:      decision{Behavior: "deny", Message: Message},
			},
		}
		if err := json.NewEncoder(stdout).Encode(resp); err != nil {
			return 1, err
		}
		return 0, nil
	}

	fmt.Fprintln(stderr, Message)
	return ExitBlock, nil
}
