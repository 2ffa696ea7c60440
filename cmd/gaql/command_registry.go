package main

import (
	"context"
	"sort"
	"strings"

	"github.com/bawdo/gaql/output"
	"github.com/bawdo/gaql/warehouse"
)

// commandEntry maps a backslash command prefix to its handler and optional
// argument completer.
type commandEntry struct {
	prefix    string
	handler   func(args string) error
	completer func() []string // argument candidates; nil = no arg completion
	hidden    bool            // excluded from commandNames()
}

// initCommands builds the command registry and sorts by prefix length descending.
func (s *Session) initCommands() {
	s.commands = []commandEntry{
		{prefix: "help", handler: func(_ string) error { s.cmdHelp(); return nil }},
		{prefix: "?", handler: func(_ string) error { s.cmdHelp(); return nil }, hidden: true},
		{prefix: "status", handler: func(_ string) error { s.cmdStatus(); return nil }},

		// --- backend selection ---
		{prefix: "backend ", handler: s.cmdBackend, completer: func() []string { return backendNames }},
		{prefix: "backend", handler: s.cmdBackend},
		{prefix: "engine ", handler: s.cmdEngine, completer: warehouse.Engines},
		{prefix: "engine", handler: s.cmdEngine},

		// --- warehouse connectivity ---
		{prefix: "connect ", handler: s.cmdConnect},
		{prefix: "connect", handler: s.cmdConnect},
		{prefix: "disconnect", handler: func(_ string) error { return s.cmdDisconnect() }},
		{prefix: "resources", handler: func(_ string) error { return s.cmdResources() }},
		{prefix: "fields ", handler: s.cmdFields, completer: s.resourceNames},
		{prefix: "fields", handler: s.cmdFields},

		// --- output and inspection ---
		{prefix: "format ", handler: s.cmdFormat, completer: func() []string { return output.Names }},
		{prefix: "format", handler: s.cmdFormat},
		{prefix: "tokens ", handler: s.cmdTokens},
		{prefix: "tokens", handler: s.cmdTokens},
		{prefix: "sql ", handler: s.cmdSQL},
		{prefix: "sql", handler: s.cmdSQL},
	}

	// Sort by prefix length descending so longest prefixes match first.
	sort.SliceStable(s.commands, func(i, j int) bool {
		return len(s.commands[i].prefix) > len(s.commands[j].prefix)
	})
}

// commandNames derives the command name list from the registry for tab completion.
func (s *Session) commandNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, cmd := range s.commands {
		if cmd.hidden {
			continue
		}
		name := strings.TrimRight(cmd.prefix, " ")
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	// quit is handled by the console loop, not Execute().
	if !seen["quit"] {
		names = append(names, "quit")
	}
	sort.Strings(names)
	return names
}

func (s *Session) resourceNames() []string {
	if s.wh == nil {
		return nil
	}
	names, _ := s.wh.Resources(context.Background())
	return names
}
