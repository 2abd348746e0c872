// Package remote commits notes to a GitHub repository through the REST
// contents API.
//
// A Client is bound to one repository with Initialize; CreateFile and
// ListFiles fail with ErrNotInitialized until then. ValidateConfig is an
// independent probe that never touches the bound configuration.
//
// Failures are reported as *Error. Retry is true exactly when GitHub
// answered with a 5xx status; 4xx answers and transport failures are final.
package remote
