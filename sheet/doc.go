// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sheet holds the process-wide editable state container.

Store is the exclusive owner of the sheet state. The HTTP layer never
touches fields directly; it calls edit methods (SetDetail, SetAgendaField,
Move, Delete, Add, ...) and reads deep-copied snapshots. Each mutation runs
the agenda recompute pass before returning, which is the ordering guarantee
the rest of the system relies on: any state a reader or the snapshot store
observes has consistent derived row times.

The recompute triggers are explicit rather than inferred from change
detection:

  - SetDetail("time", ...), which moves the schedule anchor
  - SetAgendaField with a duration or type field
  - Move, Delete, Add, which change the accumulation order
  - Replace and Reset, which swap the whole state

Text edits (activity, role, officer names, date selection) skip the pass.
*/
package sheet
