package metrics

// IncrementMeetingCreated increments the meeting creation counter by type
func (m *Metrics) IncrementMeetingCreated(meetingType string) {
	m.safeExecute("IncrementMeetingCreated", func() {
		m.MeetingCreatedTotal.WithLabelValues(meetingType).Inc()
	})
}

// IncrementVoteCast increments the vote counter
func (m *Metrics) IncrementVoteCast() {
	m.safeExecute("IncrementVoteCast", func() {
		m.VoteCastTotal.Inc()
	})
}

// IncrementRouletteSpun increments the roulette draw counter
func (m *Metrics) IncrementRouletteSpun() {
	m.safeExecute("IncrementRouletteSpun", func() {
		m.RouletteSpunTotal.Inc()
	})
}

// SetMeetingsTotal sets the total meetings gauge
func (m *Metrics) SetMeetingsTotal(count int64) {
	m.safeExecute("SetMeetingsTotal", func() {
		m.MeetingsTotal.Set(float64(count))
	})
}
