// Package attribution implements a pre-command hook that blocks git commits
// carrying AI co-authorship trailers.
//
// The host tool-permission system sends a JSON event on stdin:
//
//	{"hook_event_name": "PreToolUse", "tool_input": {"command": "git commit -m ..."}}
//
// Only commands containing "git commit" are inspected. When a denylisted
// pattern matches, a PermissionRequest event is answered with a JSON deny
// decision on stdout; any other event gets the message on stderr and exit
// status 2, which tells the host to block the command.
package attribution
