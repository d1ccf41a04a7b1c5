package decoder

// tailLayout identifies which of the two incompatible ROBOTLASER tail
// layouts follows the range run. Older carmen-logger builds insert one
// "too close" flag per beam between the ranges and the remission count;
// newer builds go straight to the remission count.
type tailLayout int

const (
	// tailPlain: remission count immediately after the range run.
	tailPlain tailLayout = iota
	// tailFlagged: n too-close flag tokens precede the remission count.
	tailFlagged
)

// minTrailerTokens is the smallest possible plain tail after the range
// run: remission count, laser pose (3), robot pose (3), tv, rv, the three
// safety/turn-axis fields, and the ipc-timestamp/hostname/logger-timestamp
// trailer.
const minTrailerTokens = 15

// resolveTailLayout classifies the tail from the leftover token count
// after the range run. A plain tail only exceeds minTrailerTokens when
// remission values are present; a flagged tail always adds exactly beams
// extra tokens.
//
// This is a size heuristic, not a content check, and it has two blind
// spots: a plain line carrying more than beams remission values is read
// as flagged, and a flagged line with zero remissions lands exactly on
// the threshold and is read as plain. Neither shape has been observed in
// the public CARMEN datasets.
func resolveTailLayout(remaining, beams int) tailLayout {
	if remaining > minTrailerTokens+beams {
		return tailFlagged
	}
	return tailPlain
}
