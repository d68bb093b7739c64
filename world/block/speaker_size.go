package block

// SpeakerSize is the size variant of a speaker. The size decides the hitbox of the block and is
// persisted as the block's metadata.
type SpeakerSize struct {
	speakerSize
}

type speakerSize uint8

// SmallSpeaker is the smallest speaker, stored with metadata 0.
func SmallSpeaker() SpeakerSize {
	return SpeakerSize{0}
}

// MediumSpeaker is stored with metadata 1.
func MediumSpeaker() SpeakerSize {
	return SpeakerSize{1}
}

// LargeSpeaker is the tallest speaker, stored with metadata 2. Its hitbox reaches into the block above.
func LargeSpeaker() SpeakerSize {
	return SpeakerSize{2}
}

// SpeakerSizes returns all speaker sizes ordered by metadata.
func SpeakerSizes() []SpeakerSize {
	return []SpeakerSize{SmallSpeaker(), MediumSpeaker(), LargeSpeaker()}
}

// SpeakerSizeFromMeta returns the size stored with the metadata passed. Unknown metadata decodes to
// SmallSpeaker.
func SpeakerSizeFromMeta(meta int) SpeakerSize {
	for _, s := range SpeakerSizes() {
		if s.Meta() == meta {
			return s
		}
	}
	return SmallSpeaker()
}

// SpeakerSizeFromString returns the size with the name passed.
func SpeakerSizeFromString(name string) (SpeakerSize, bool) {
	for _, s := range SpeakerSizes() {
		if s.String() == name {
			return s, true
		}
	}
	return SpeakerSize{}, false
}

// Uint8 ...
func (s speakerSize) Uint8() uint8 {
	return uint8(s)
}

// Meta returns the metadata value the size is stored as.
func (s speakerSize) Meta() int {
	return int(s)
}

// String ...
func (s speakerSize) String() string {
	switch s {
	case 0:
		return "small"
	case 1:
		return "medium"
	case 2:
		return "large"
	}
	panic("unknown speaker size")
}
