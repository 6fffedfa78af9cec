package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/tetris-server/internal/tetris"
)

var (
	log = logrus.New()

	inputPath  string
	outputPath string
	verbose    bool
)

func init() {
	const (
		inputUsage  = "path to a file of placement lines (defaults to stdin)"
		outputUsage = "path to write resulting heights to (defaults to stdout)"
	)
	flag.StringVar(&inputPath, "input", "", inputUsage)
	flag.StringVar(&inputPath, "i", "", inputUsage+" (shorthand)")
	flag.StringVar(&outputPath, "output", "", outputUsage)
	flag.StringVar(&outputPath, "o", "", outputUsage+" (shorthand)")
	flag.BoolVar(&verbose, "verbose", false, "print the board after every line")
	flag.BoolVar(&verbose, "v", false, "print the board after every line (shorthand)")
}

// playLine plays one comma-separated line of placements like "Q0,I2,I6"
// and returns the resulting stack height.
func playLine(game *tetris.GameState, line string) (height int, err error) {
	height = game.Height()
	for _, s := range strings.Split(line, ",") {
		s = strings.TrimSpace(s)
		if len(s) < 2 {
			return height, fmt.Errorf("malformed placement %q", s)
		}
		piece, err := tetris.ParsePiece(s[:1])
		if err != nil {
			return height, err
		}
		offset, err := strconv.Atoi(s[1:])
		if err != nil {
			return height, fmt.Errorf("malformed offset in %q", s)
		}
		if height, err = game.Place(piece, offset); err != nil {
			return height, err
		}
	}
	return height, nil
}

func main() {
	flag.Parse()

	in := os.Stdin
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			log.Fatal("unable to open input: ", err)
		}
		defer f.Close()
		in = f
	}

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			log.Fatal("unable to create output: ", err)
		}
		defer f.Close()
		out = f
	}

	game := tetris.NewGame()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		height, err := playLine(game, line)
		if err != nil {
			log.Fatalf("unable to play %q: %s", line, err)
		}
		fmt.Fprintln(out, height)
		if verbose {
			fmt.Println(line)
			fmt.Println(game.Grid.Dump())
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal("unable to read input: ", err)
	}
}
