// Package tools implements the MCP tool handlers for the ADO
// instructions server.
//
// Each tool is a struct that receives its dependencies at construction
// and exposes Definition() for registration plus Handle() compatible
// with mcp-go's CallToolRequest signature. User-caused failures (bad
// input, invalid JSON) become mcp.NewToolResultError so the model can
// correct itself; infrastructure failures return a non-nil error.
package tools

import (
	"log"

	"github.com/arroz4/ado-instruction-mcp-server/internal/ado"
	"github.com/arroz4/ado-instruction-mcp-server/internal/history"
)

// archive saves a generated instruction set to the history store.
// Best-effort: a nil store (history disabled) or a write failure never
// blocks the tool result.
func archive(store *history.Store, ins *ado.Instructions, source string) {
	if store == nil || ins == nil {
		return
	}
	if _, err := store.Add(ins, source); err != nil {
		log.Printf("Warning: failed to archive generation: %v", err)
	}
}

// resultJSON renders an instruction set as the tool's JSON payload.
func resultJSON(ins *ado.Instructions) (string, error) {
	data, err := ins.ToJSON()
	if err != nil {
		return "", err
	}
	return string(data), nil
}
