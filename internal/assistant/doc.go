// Package assistant provides the client-side request wrapper for the AI
// question endpoint. It hides transport and retry complexity behind
// Ask/AskWithImage (typed results) and GetAIResponse/GetAIResponseWithImage
// (display-string adapters that never fail).
package assistant
