package docket

import "time"

// Conference action labels. ActionNone means no outcome is attributable to
// the conference yet; ActionUnknown means events followed it but none
// carried an outcome tag.
const (
	ActionNone        = ""
	ActionRescheduled = "RESCHEDULED"
	ActionRelisted    = "RELISTED"
	ActionDismissed   = "DISMISSED"
	ActionMoot        = "MOOT"
	ActionRemanded    = "REMANDED"
	ActionGranted     = "GRANTED"
	ActionRemoved     = "REMOVED"
	ActionDenied      = "DENIED"
	ActionCVSG        = "CVSG"
	ActionIFPDenied   = "IFP DENIED"
	ActionResponse    = "RESPONSE"
	ActionRecord      = "RECORD"
	ActionRHDenied    = "RH DENIED"
	ActionAffirmed    = "AFFIRMED"
	ActionInquorate   = "INQUORATE"
	ActionMotionDeny  = "MOTION DENY"
	ActionCounsel     = "COUNSEL"
	ActionUnknown     = "UNKNOWN"
)

// outcomeTags maps outcome-bearing event tags to their action labels, in
// fixed check priority.
var outcomeTags = []struct {
	tag    Tag
	action string
}{
	{TagDismissed, ActionDismissed},
	{TagMoot, ActionMoot},
	{TagRemanded, ActionRemanded},
	{TagGranted, ActionGranted},
	{TagRemoved, ActionRemoved},
	{TagDenied, ActionDenied},
	{TagCVSG, ActionCVSG},
	{TagIFPDenied, ActionIFPDenied},
	{TagResponseRequested, ActionResponse},
	{TagRecordRequested, ActionRecord},
	{TagRehearingDenied, ActionRHDenied},
	{TagAffirmed, ActionAffirmed},
	{TagInquorate, ActionInquorate},
	{TagMotionDenied, ActionMotionDeny},
	{TagCounselGranted, ActionCounsel},
}

// ConferenceAction determines what happened to the case as a consequence of
// the conference held on confDate. Scheduling and outcome are reported as
// separate, temporally disjoint events on the docket sheet; this re-attaches
// the outcome to the conference that caused it.
//
// allDates, when non-nil, is the sorted list of every conference date in the
// term and enables relist detection.
func (s *Status) ConferenceAction(confDate time.Time, allDates []time.Time) string {
	// A rescheduled distribution never produced an outcome.
	for _, dist := range s.Distributions {
		if dist.ConferenceDate.Equal(confDate) && dist.Rescheduled {
			return ActionRescheduled
		}
	}

	// Redistribution to the very next conference with no intervening
	// outcome is a relist.
	if next, ok := nextConference(confDate, allDates); ok {
		for _, dist := range s.Distributions {
			if dist.ConferenceDate.Equal(next) {
				return ActionRelisted
			}
		}
	}

	seen := false
	for _, ev := range s.Events {
		if ev.Date.Before(confDate) {
			continue
		}
		seen = true
		// A later distribution before any outcome means the case was
		// simply pushed to a not-yet-known conference.
		if ev.Tags.Has(TagDistributed) && ev.Date.After(confDate) {
			return ActionNone
		}
		for _, out := range outcomeTags {
			if ev.Tags.Has(out.tag) {
				return out.action
			}
		}
	}
	if seen {
		return ActionUnknown
	}
	return ActionNone
}

func nextConference(confDate time.Time, allDates []time.Time) (time.Time, bool) {
	for i, d := range allDates {
		if d.Equal(confDate) && i+1 < len(allDates) {
			return allDates[i+1], true
		}
	}
	return time.Time{}, false
}
