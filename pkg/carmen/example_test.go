package carmen_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/carmenlog/carmenlog-go/pkg/carmen"
)

func ExampleDecodeLine() {
	line := "FLASER 3 1.0 2.0 3.0 0.5 0.5 0.0 0.5 0.5 0.0 1000.0 host 1000.1"

	rec, err := carmen.DecodeLine(line)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("stamp=%.1f beams=%d pose=(%.1f, %.1f)\n",
		rec.Stamp, len(rec.Ranges), rec.RobotPose.X, rec.RobotPose.Y)
	// Output: stamp=1000.0 beams=3 pose=(0.5, 0.5)
}

func ExampleNewReader() {
	input := "# a short session\n" +
		"FLASER 2 1.0 2.0 0.0 0.0 0.0 0.0 0.0 0.0 10.0 host 10.1\n" +
		"FLASER 2 3.0 4.0 0.1 0.0 0.0 0.1 0.0 0.0 10.5 host 10.6\n"

	rd, err := carmen.NewReader(strings.NewReader(input))
	if err != nil {
		panic(err)
	}
	defer rd.Close()

	for rec, err := range rd.Scans() {
		if err != nil {
			panic(err)
		}
		fmt.Printf("%.1f %v\n", rec.Stamp, rec.Ranges)
	}
	fmt.Printf("decoded %d of %d lines\n", rd.Stats().Scans, rd.Stats().Lines)
	// Output:
	// 10.0 [1 2]
	// 10.5 [3 4]
	// decoded 2 of 3 lines
}

func ExampleLineDecoderFunc() {
	// Handle a site-specific tag alongside the standard message set.
	custom := carmen.LineDecoderFunc(func(line string) (*carmen.LaserScan, error) {
		if !strings.HasPrefix(line, "SIMLASER ") {
			return nil, nil
		}
		return &carmen.LaserScan{FrameID: "sim"}, nil
	})

	chain := &carmen.DecoderChain{Decoders: []carmen.LineDecoder{
		custom,
		carmen.DefaultDecoder{},
	}}

	rec, _ := chain.DecodeLine("SIMLASER anything")
	fmt.Println(rec.FrameID)
	// Output: sim
}
