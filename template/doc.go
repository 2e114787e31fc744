// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package template provides the sheet templates the editable state starts
from and resets to.

Default returns the built-in template: club identity, the standard agenda
(reception through awards, with prepared-speech / break / conclusion
sections), the officer roster, and the date selection.

LoadFile reads an optional YAML template and merges it over the default, so
a club only overrides what differs:

	details:
	  club_name: Riverside Toastmasters
	  time: "19:00"
	officers:
	  - role: PRESIDENT
	    name: Dana Ortiz

The weekday and month vocabularies for the date selector also live here.
*/
package template
