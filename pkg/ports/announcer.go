package ports

// AnnouncementSink receives the text currently exposed to assistive technology.
// An empty string clears the announcement.
type AnnouncementSink interface {
	SetAnnouncement(text string)
}

// SinkFunc adapts a function to AnnouncementSink.
type SinkFunc func(text string)

func (f SinkFunc) SetAnnouncement(text string) {
	f(text)
}
