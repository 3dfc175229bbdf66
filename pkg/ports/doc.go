/*
Package ports defines the driven ports (interfaces) for the iconlint engine.

These interfaces decouple the core logic from external implementations,
allowing the engine to work with any host scene graph and any run-result
persistence backend.

# Key Interfaces

  - SceneMutator: the opaque write contract with the host scene graph,
    invoked only by pipeline steps (never by validators).
  - RunStore: persistence of pipeline run results (memory, Redis).
*/
package ports
