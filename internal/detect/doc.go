// Package detect implements the human-segmentation detection service.
//
// A Service owns at most one loaded segmentation model behind the narrow
// capability interfaces in capability.go. Lifecycle:
//
//   - Initialize: single-flight model load with best-effort backend
//     selection (accelerated first, explicit fallback on failure).
//     Concurrent callers join the same in-flight attempt.
//   - DetectHumans: serialized per-frame inference over a reusable
//     scratch surface, producing a mask plus a confidence score.
//   - Dispose: releases the model handle, backend allocations and the
//     scratch surface; the service can be initialized again afterwards.
//
// The package does not hard-code any inference runtime. Callers inject a
// Loader and a Runtime; a deterministic stub is provided for development
// and tests.
package detect
