// Package tools defines the tool contract for the agent loop and the
// registry that resolves action names to tools.
//
// Tools never return Go errors: every failure is encoded as descriptive
// "Error: ..." observation text, so the model can read the failure and
// self-correct on the next turn.
package tools
