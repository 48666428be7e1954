package usecase

// EngineVersion tags every engine-owned document and run record so operators
// can tell which rule set produced a number.
const EngineVersion = "2026.1"

// DefaultWriteChunkSize matches the store's atomic multi-write bound.
const DefaultWriteChunkSize = 500
