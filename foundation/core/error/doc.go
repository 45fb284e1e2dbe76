// Package error provides structured error handling for the RAQL front end.
//
// Package: error
// Title: RAQL Error Handling Framework
// Description: Structured errors with codes, severity, details and the
//              operation that failed. Drivers use the codes to keep
//              statement-level rejections apart from caller-level failures.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-12 v0.2.0: RAQL error codes, removed localization and stack pooling
//
// Usage:
//
//	err := mdwerror.New("program has no statement terminator").
//		WithCode(mdwerror.CodeNoTerminator).
//		WithOperation("raql.RecognizeProgram")
//
//	if mdwerror.HasCode(err, mdwerror.CodeNoTerminator) {
//		// report the caller-level failure
//	}
package error
