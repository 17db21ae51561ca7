// Package pageserrors provides structured error types for awesomepages.
//
// Import path: github.com/marcovoc/awesomepages/pageserrors
//
// Every fatal condition names the offending entity (pattern, file path or
// directory) so the message is actionable on its own. Callers can distinguish
// categories with [errors.Is] and [errors.As].
//
// # Error Types
//
//   - [DuplicateRestItemError]: the same rest pattern appears twice in the nav configuration
//   - [MetaError]: a directory metadata file exists but cannot be decoded
//   - [NavEntryError]: a navigation entry points to nothing (strict mode only)
//   - [PhaseError]: a lifecycle hook ran out of order or twice
//   - [PruneError]: deleting an unreferenced file or emptied directory failed
//   - [ConfigError]: invalid configuration or options
//
// # Usage with errors.As
//
//	_, err := site.Build(cfg)
//	var dup *pageserrors.DuplicateRestItemError
//	if errors.As(err, &dup) {
//	    fmt.Println("fix", dup.Source, "pattern", dup.Pattern)
//	}
package pageserrors
