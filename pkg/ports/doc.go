/*
Package ports defines the driven ports (interfaces) of the dropzone engine.

These interfaces decouple the coordination logic from the host UI, so the same engine can be
driven by a terminal UI, a test harness or any other surface that can report geometry.

# Key Interfaces

  - RectProvider: Supplies the screen-space bounds of a registered element (Geometry Provider).
  - AnnouncementSink: Receives accessibility announcements (a status line, a screen reader bridge).
  - Hierarchy: A read-only snapshot of the host's tree data, used for cycle prevention.
*/
package ports
