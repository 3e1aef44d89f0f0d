package monthcal

// dayTickMsg is sent by the ticker to re-check the current date.
type dayTickMsg struct {
	tag int
}
