package dom

// Element ids and attributes shared by the server-rendered page and the
// browser runtime.
const (
	CursorID      = "cursor"
	TrailID       = "cursor-trail"
	BurstsID      = "cursor-bursts"
	ToasterID     = "toaster"
	ContactFormID = "contact-form"
	DiscordCopyID = "discord-copy"
	HeroPhraseID  = "hero-phrase"
	MenuToggleID  = "menu-toggle"
	MobileMenuID  = "mobile-menu"

	AttrPhrases      = "data-phrases"
	AttrPhraseMillis = "data-interval-ms"
	AttrUsername     = "data-username"

	// AttrFallback holds the image swapped in when an img fails to load;
	// AttrFailed marks the image's frame once that happened.
	AttrFallback = "data-fallback"
	AttrFailed   = "data-failed"
)
