// Package formatter renders statistics reports and raw trip pages.
//
// This package is organized into:
// - wrapper.go: report envelope (generation time, city, applied filter)
// - text.go: terminal output, one block per statistic plus raw pages
// - json.go: JSON serialization
// - proto.go: binary protobuf serialization via google.protobuf.Struct
package formatter
