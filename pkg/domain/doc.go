/*
Package domain contains the core domain models for the iconlint engine.

It defines the scene-tree snapshot types the validators read, the
validation result model, and the pipeline run types. This package is kept
pure and free of external dependencies like I/O or persistence, following
Hexagonal Architecture principles.

# Key Entities

  - Node: a borrowed snapshot of a host scene-graph node (closed NodeType vocabulary).
  - Paints: an ordered paint list or the host's "mixed" sentinel.
  - ValidationResult: errors block, warnings never do.
  - VectorPositionInfo: derived per-primitive geometry, recomputed every pass.
  - RunResult: the terminal outcome of a repair pipeline run.
*/
package domain
