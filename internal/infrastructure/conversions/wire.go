package conversions

// Graph API Conversions request and response bodies.

type eventsRequest struct {
	Data          []eventPayload `json:"data"`
	AccessToken   string         `json:"access_token"`
	TestEventCode string         `json:"test_event_code,omitempty"`
}

type eventPayload struct {
	EventName      string         `json:"event_name"`
	EventTime      int64          `json:"event_time"`
	ActionSource   string         `json:"action_source"`
	EventSourceURL string         `json:"event_source_url"`
	EventID        string         `json:"event_id,omitempty"`
	UserData       userData       `json:"user_data"`
	CustomData     map[string]any `json:"custom_data"`
}

type userData struct {
	Em              []string `json:"em,omitempty"`
	Ph              []string `json:"ph,omitempty"`
	ClientIPAddress string   `json:"client_ip_address,omitempty"`
	ClientUserAgent string   `json:"client_user_agent,omitempty"`
	FBC             string   `json:"fbc,omitempty"`
	FBP             string   `json:"fbp,omitempty"`
}

type graphResponse struct {
	EventsReceived int         `json:"events_received"`
	FBTraceID      string      `json:"fbtrace_id"`
	Error          *graphError `json:"error"`
}

type graphError struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Code      int    `json:"code"`
	FBTraceID string `json:"fbtrace_id"`
}

func (r graphResponse) traceID() string {
	if r.FBTraceID != "" {
		return r.FBTraceID
	}
	if r.Error != nil {
		return r.Error.FBTraceID
	}
	return ""
}
