// Package provider defines suggestion backend implementations for
// missing-key reconciliation.
package provider

import "github.com/ZaguanLabs/golocale"

// Translator is the interface for suggestion backends.
// This is an alias to the main package interface for convenience.
type Translator = golocale.Translator

// TranslateRequest is an alias to the main package type.
type TranslateRequest = golocale.TranslateRequest
