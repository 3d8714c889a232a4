/*
Package domain contains the core models of the dropzone engine.

It defines what is being dragged, where it may land and how a finished move is described.
The package is pure: no I/O, no rendering, no registry state.

# Key Entities

  - Item: The descriptor of a dragged element (id, type, parent, index, payload).
  - DraggableConfig / DroppableConfig: Host-supplied configuration for registered elements.
  - AcceptSet: The item types a drop zone accepts ("any" or an explicit list).
  - Position: Placement relative to a zone (before, after, inside).
  - DropResult: The structured description of a completed or cancelled move.
  - Session: A read-only snapshot of the in-flight drag.
*/
package domain
