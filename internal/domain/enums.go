package domain

// ContactStatus is the networking stage of a contact.
type ContactStatus string

const (
	ContactStatusToContact       ContactStatus = "To Contact"
	ContactStatusInitialOutreach ContactStatus = "Initial Outreach"
	ContactStatusInConversation  ContactStatus = "In Conversation"
	ContactStatusFollowUpNeeded  ContactStatus = "Follow-up Needed"
	ContactStatusNotAFit         ContactStatus = "Not a Fit"
	ContactStatusNoResponse      ContactStatus = "No Response"
)

func (s ContactStatus) String() string { return string(s) }

func (s ContactStatus) IsValid() bool {
	switch s {
	case ContactStatusToContact, ContactStatusInitialOutreach, ContactStatusInConversation,
		ContactStatusFollowUpNeeded, ContactStatusNotAFit, ContactStatusNoResponse:
		return true
	}
	return false
}

// ApplicationStatus is owned by the pipeline and intentionally open-ended.
// Only StatusBadFit carries meaning for aggregation.
type ApplicationStatus string

const (
	ApplicationStatusDraft     ApplicationStatus = "Draft"
	ApplicationStatusApplied   ApplicationStatus = "Applied"
	ApplicationStatusInterview ApplicationStatus = "Interviewing"
	ApplicationStatusOffer     ApplicationStatus = "Offer"
	ApplicationStatusRejected  ApplicationStatus = "Rejected"
	ApplicationStatusBadFit    ApplicationStatus = "Bad Fit"
)

func (s ApplicationStatus) String() string { return string(s) }

// MessageType classifies a message in a contact thread.
type MessageType string

const (
	MessageTypeNote       MessageType = "Note"
	MessageTypeConnection MessageType = "Connection"
	MessageTypeFollowUp   MessageType = "Follow-up"
	MessageTypeComment    MessageType = "Comment"
)

func (t MessageType) String() string { return string(t) }

func (t MessageType) IsValid() bool {
	switch t {
	case MessageTypeNote, MessageTypeConnection, MessageTypeFollowUp, MessageTypeComment:
		return true
	}
	return false
}

// StoryFormat is the storytelling structure of an impact story.
type StoryFormat string

const (
	StoryFormatSTAR      StoryFormat = "STAR"
	StoryFormatSCOPE     StoryFormat = "SCOPE"
	StoryFormatWINS      StoryFormat = "WINS"
	StoryFormatSPOTLIGHT StoryFormat = "SPOTLIGHT"
)

func (f StoryFormat) String() string { return string(f) }

func (f StoryFormat) IsValid() bool {
	switch f {
	case StoryFormatSTAR, StoryFormatSCOPE, StoryFormatWINS, StoryFormatSPOTLIGHT:
		return true
	}
	return false
}

// Fields lists the structured fields a story in this format carries.
func (f StoryFormat) Fields() []string {
	switch f {
	case StoryFormatSTAR:
		return []string{"situation", "task", "action", "result"}
	case StoryFormatSCOPE:
		return []string{"situation", "complication", "opportunity", "plan", "execution"}
	case StoryFormatWINS:
		return []string{"work", "impact", "numbers", "significance"}
	case StoryFormatSPOTLIGHT:
		return []string{"spotlight", "problem", "orchestration", "transformation", "learning"}
	}
	return nil
}
