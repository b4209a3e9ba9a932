// Package writers turns a report into serialized output.
//
// Design:
//   • Writers own format dispatch; output owns the byte layout.
//   • report stays presentation-free; core stays I/O-free.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
