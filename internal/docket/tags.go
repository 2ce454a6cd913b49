package docket

// Tag is one semantic label attached to a docket event. Tags are write-once:
// classification sets them while a Status is being built and nothing clears
// them afterwards.
type Tag string

const (
	TagGranted         Tag = "granted"
	TagDenied          Tag = "denied"
	TagDismissed       Tag = "dismissed"
	TagDismissedRule46 Tag = "dismissed_rule46"
	TagDistributed     Tag = "distributed"
	TagRescheduled     Tag = "rescheduled"
	TagArgued          Tag = "argued"
	TagSetForArgument  Tag = "set_for_argument"

	TagCVSG       Tag = "cvsg"
	TagCVSGReturn Tag = "cvsg_return"

	TagJudgmentIssued Tag = "judgment_issued"
	TagVacated        Tag = "vacated"
	TagRemanded       Tag = "remanded"
	TagReversed       Tag = "reversed"
	TagAffirmed       Tag = "affirmed"
	TagGVR            Tag = "gvr"
	TagRemoved        Tag = "removed"
	TagMoot           Tag = "moot"
	TagInquorate      Tag = "inquorate"

	TagPetitionFiled     Tag = "petition_filed"
	TagAppendixFiled     Tag = "appendix_filed"
	TagBriefInOpposition Tag = "brief_in_opposition"
	TagReplyBrief        Tag = "reply_brief"
	TagSupplementalBrief Tag = "supplemental_brief"
	TagAmicusBrief       Tag = "amicus_brief"
	TagWaiver            Tag = "waiver"
	TagBlanketConsent    Tag = "blanket_consent"

	TagRecordRequested   Tag = "record_requested"
	TagRecordReceived    Tag = "record_received"
	TagResponseRequested Tag = "response_requested"

	TagRehearingFiled      Tag = "rehearing_filed"
	TagRehearingDenied     Tag = "rehearing_denied"
	TagRehearingDistributed Tag = "rehearing_distributed"

	TagMotionFiled    Tag = "motion_filed"
	TagMotionGranted  Tag = "motion_granted"
	TagMotionDenied   Tag = "motion_denied"
	TagMotionDismiss  Tag = "motion_dismiss"
	TagCounselGranted Tag = "counsel_granted"

	TagApplicationGranted Tag = "application_granted"
	TagApplicationDenied  Tag = "application_denied"
	TagStayGranted        Tag = "stay_granted"
	TagStayDenied         Tag = "stay_denied"
	TagExtensionGranted   Tag = "extension_granted"

	TagIFPDenied  Tag = "ifp_denied"
	TagIFPPaid    Tag = "ifp_paid"
	TagCompliance Tag = "compliance"

	TagNotAccepted Tag = "not_accepted"
	TagAbuse       Tag = "abuse"
	TagRecusal     Tag = "recusal"
	TagWithdrawn   Tag = "withdrawn"
)

// TagSet is the set of labels carried by one event.
type TagSet map[Tag]struct{}

// Add marks the tag as present.
func (ts TagSet) Add(tag Tag) {
	ts[tag] = struct{}{}
}

// Has reports whether the tag is present.
func (ts TagSet) Has(tag Tag) bool {
	_, ok := ts[tag]
	return ok
}

// List returns the tags in unspecified order.
func (ts TagSet) List() []Tag {
	out := make([]Tag, 0, len(ts))
	for tag := range ts {
		out = append(out, tag)
	}
	return out
}
