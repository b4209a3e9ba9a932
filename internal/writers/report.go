package writers

import "miner/internal/output"

func init() {
	Register("text", output.WriteText)
	Register("json", output.WriteJSON)
	Register("jsonl", WriteJSONL)
}
