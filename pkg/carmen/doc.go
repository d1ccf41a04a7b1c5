// Package carmen decodes CARMEN robotics log files into canonical 2D
// laser scan records.
//
// The CARMEN format is line-oriented and open-ended: message types share
// nothing but whitespace-delimited tokens, and the same message type can
// appear in two incompatible layouts depending on the logging-tool
// version. This package recognizes the self-describing ROBOTLASER
// messages and the legacy fixed-layout FLASER/RLASER messages, and
// silently skips everything else (ODOM, PARAM, comments, unknown tags).
// Malformed lines degrade data completeness instead of halting ingestion.
//
// # Reading a log file
//
//	rd, err := carmen.Open("intel.log.gz", carmen.WithFrameID("base_laser"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rd.Close()
//
//	for rec, err := range rd.Scans() {
//	    if err != nil {
//	        log.Fatal(err) // stream-level failure, sequence is over
//	    }
//	    fmt.Printf("%.6f: %d beams\n", rec.Stamp, len(rec.Ranges))
//	}
//
// Gzip-packed logs (the way the public datasets ship) are decompressed
// transparently. [ScanFile] bundles open, iterate, and close for the
// common case.
//
// # Decoding single lines
//
//	rec, err := carmen.DecodeLine(line)
//	// rec == nil && err == nil: not a laser message (not an error)
//
// # Custom decoders
//
// Implement [LineDecoder] to handle site-specific message tags, and
// combine decoders with [DecoderChain]; the first decoder to recognize
// a line wins.
//
// # Legacy geometry
//
// FLASER/RLASER messages carry no angular metadata. The decoder assumes
// a 180 degree forward-facing sensor by default; override it with
// [WithAssumedFOV] or load a dataset profile from the geometry
// subpackage.
//
// # Following a live log
//
// [Follow] tails a log file that is still being written and delivers
// records and per-line errors on channels until the context is
// cancelled.
package carmen
