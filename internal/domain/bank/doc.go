// Package bank holds the question bank domain model.
//
// The JSON field names mirror the questions.json artifact embedded into the
// bundled application, so the generator and the application agree on the
// schema without a shared definition.
package bank
