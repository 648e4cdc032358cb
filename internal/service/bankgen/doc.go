// Package bankgen builds the question bank JSON from an exam transcript.
//
// The transcript is a plain-text export with one paragraph per line, as
// produced by saving the source document as text. Question boundaries are
// recovered from the answer lines the export carries after each question.
package bankgen
