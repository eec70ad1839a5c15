package mapfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/clearway/clearance"
	"github.com/katalvlaran/clearway/geom"
	"github.com/katalvlaran/clearway/obstacle"
)

// ErrEmptyFile indicates the reader produced no header line, or a first
// line that is not two positive integers.
var ErrEmptyFile = errors.New("mapfile: empty input, expected a header line")

// Load reads a ClearanceMap from r. The first line must be "<rows>
// <cols>"; every subsequent line is parsed as "<x> <y> <radius>" and
// inserted. Lines that fail to parse, and obstacles that Insert rejects,
// are skipped without aborting the load.
func Load(r io.Reader) (*clearance.ClearanceMap, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, ErrEmptyFile
	}

	rows, cols, ok := parseHeader(scanner.Text())
	if !ok {
		return nil, ErrEmptyFile
	}

	m, err := clearance.New(rows, cols)
	if err != nil {
		return nil, err
	}

	for scanner.Scan() {
		o, ok := parseObstacle(scanner.Text())
		if !ok {
			continue
		}
		m.Insert(o) // soft-fails silently per spec §6
	}

	return m, scanner.Err()
}

// Save writes m to w in the format Load accepts.
func Save(w io.Writer, m *clearance.ClearanceMap) error {
	if _, err := fmt.Fprintf(w, "%d %d\n", m.Rows(), m.Cols()); err != nil {
		return err
	}
	for _, o := range m.Obstacles() {
		if _, err := fmt.Fprintf(w, "%d %d %v\n", o.Center.X, o.Center.Y, o.Radius); err != nil {
			return err
		}
	}

	return nil
}

func parseHeader(line string) (rows, cols int, ok bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, false
	}
	r, err1 := strconv.Atoi(fields[0])
	c, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil || r < 1 || c < 1 {
		return 0, 0, false
	}

	return r, c, true
}

func parseObstacle(line string) (obstacle.Obstacle, bool) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return obstacle.Obstacle{}, false
	}
	x, err1 := strconv.Atoi(fields[0])
	y, err2 := strconv.Atoi(fields[1])
	radius, err3 := strconv.ParseFloat(fields[2], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return obstacle.Obstacle{}, false
	}

	o, err := obstacle.New(geom.Cell{X: x, Y: y}, radius)
	if err != nil {
		return obstacle.Obstacle{}, false
	}

	return o, true
}
