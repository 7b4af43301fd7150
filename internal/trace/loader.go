// Package trace is the input loader: the external collaborator that
// turns the trace file and the random-number file into the core data
// model (§2, §6). None of the replacement-policy logic lives here —
// this package only knows how to read the two file grammars.
package trace

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/relaypager/vmpager/internal/vmm"
)

// Input is everything the event driver needs to run: the loaded
// processes (with their VMAs already attached) and the full
// instruction stream, in file order.
type Input struct {
	Processes    []*vmm.Process
	Instructions []vmm.Instruction
}

// commentScanner is a *bufio.Scanner wrapper that skips '#' comment
// lines and blank lines, since the grammar in §6 allows comments to
// interleave at every position.
type commentScanner struct {
	sc *bufio.Scanner
}

func newCommentScanner(r io.Reader) *commentScanner {
	return &commentScanner{sc: bufio.NewScanner(r)}
}

// next returns the next non-comment, non-blank line, or ok=false at
// EOF.
func (c *commentScanner) next() (string, bool) {
	for c.sc.Scan() {
		line := strings.TrimSpace(c.sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line, true
	}
	return "", false
}

// LoadInput parses the trace file described in §6: a process count, a
// VMA list per process, then an arbitrarily long instruction stream.
func LoadInput(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	sc := newCommentScanner(f)

	numProcs, err := readInt(sc, "process count")
	if err != nil {
		return nil, err
	}

	processes := make([]*vmm.Process, numProcs)
	for pid := 0; pid < numProcs; pid++ {
		vmas, err := readVMAs(sc)
		if err != nil {
			return nil, fmt.Errorf("process %d: %w", pid, err)
		}
		processes[pid] = vmm.NewProcess(pid, vmas)
	}

	instructions, err := readInstructions(sc)
	if err != nil {
		return nil, err
	}

	return &Input{Processes: processes, Instructions: instructions}, nil
}

func readVMAs(sc *commentScanner) ([]vmm.VMA, error) {
	numVMAs, err := readInt(sc, "VMA count")
	if err != nil {
		return nil, err
	}

	vmas := make([]vmm.VMA, numVMAs)
	for i := 0; i < numVMAs; i++ {
		line, ok := sc.next()
		if !ok {
			return nil, fmt.Errorf("unexpected EOF reading VMA %d", i)
		}

		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, fmt.Errorf("malformed VMA line %q", line)
		}

		start, err1 := strconv.Atoi(fields[0])
		end, err2 := strconv.Atoi(fields[1])
		wp, err3 := strconv.Atoi(fields[2])
		fm, err4 := strconv.Atoi(fields[3])
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			return nil, fmt.Errorf("malformed VMA line %q", line)
		}

		vmas[i] = vmm.VMA{
			StartPage:        start,
			EndPage:          end,
			IsWriteProtected: wp != 0,
			IsFileMapped:     fm != 0,
		}
	}

	return vmas, nil
}

func readInstructions(sc *commentScanner) ([]vmm.Instruction, error) {
	var instructions []vmm.Instruction
	for {
		line, ok := sc.next()
		if !ok {
			break
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed instruction line %q", line)
		}

		addr, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("malformed instruction line %q", line)
		}

		instructions = append(instructions, vmm.Instruction{
			Op:   fields[0][0],
			Addr: addr,
		})
	}
	return instructions, nil
}

func readInt(sc *commentScanner, what string) (int, error) {
	line, ok := sc.next()
	if !ok {
		return 0, fmt.Errorf("unexpected EOF reading %s", what)
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("malformed %s %q", what, line)
	}
	return n, nil
}

// LoadRandomValues parses the random-number file described in §6: a
// count, then that many integers, one per line.
func LoadRandomValues(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening random file: %w", err)
	}
	defer f.Close()

	sc := newCommentScanner(f)

	count, err := readInt(sc, "RAND_COUNT")
	if err != nil {
		return nil, err
	}

	vals := make([]int, count)
	for i := 0; i < count; i++ {
		n, err := readInt(sc, "random value")
		if err != nil {
			return nil, err
		}
		vals[i] = n
	}

	return vals, nil
}
