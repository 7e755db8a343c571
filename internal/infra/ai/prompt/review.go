package prompt

import "fmt"

// GetSystemPrompt returns the system message for reviewer reasoning.
func GetSystemPrompt() string {
	return `You are a senior loan underwriting analyst. You must produce one valid JSON object only (no markdown, no commentary) that follows the schema below. Do not include code fences.

Requirements:
- Output must be a single JSON object.
- Base your reasoning only on the flag report supplied by the user message; do not invent anomalies.
- risk_factors must reference the flag categories and severities present in the report.
- recommendations must be actionable review steps (verify, cross-check, request document), not lending decisions.
- confidence is a number between 0 and 1.

Schema (example with empty values):
{
  "summary": "<string>",
  "risk_factors": ["<string>"],
  "recommendations": ["<string>"],
  "confidence": 0.0
}`
}

// GetUserPrompt builds the user message around an aggregated flag report.
func GetUserPrompt(reportJSON string) string {
	return fmt.Sprintf("Review this case risk report and respond with the JSON per schema. Report: %s", reportJSON)
}
