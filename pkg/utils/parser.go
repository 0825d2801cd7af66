package utils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fext/pkg/network"
	"fext/pkg/sop"
)

// namesBlock is one .names directive: a node's fanin signals and cover rows
type namesBlock struct {
	output string
	inputs []string
	rows   []string
}

// ParseBlifFile reads a combinational network in BLIF format. Supported
// directives: .model, .inputs, .outputs, .names with on-set cover rows,
// .end. Latches and don't-care covers are not supported.
func ParseBlifFile(filename string) (*network.Network, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	lines, err := readLogicalLines(file)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(filename), ".blif")
	ntk := network.NewNetwork(name)
	nodeMap := make(map[string]*network.Node)

	var inputs, outputs []string
	var blocks []*namesBlock

	// First pass: split the file into declarations and .names blocks
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case ".model":
			if len(fields) > 1 {
				ntk.Name = fields[1]
			}
		case ".inputs":
			inputs = append(inputs, fields[1:]...)
		case ".outputs":
			outputs = append(outputs, fields[1:]...)
		case ".names":
			if len(fields) < 2 {
				return nil, fmt.Errorf(".names directive without signals")
			}
			blocks = append(blocks, &namesBlock{
				output: fields[len(fields)-1],
				inputs: fields[1 : len(fields)-1],
			})
		case ".end":
			// Done
		default:
			if strings.HasPrefix(fields[0], ".") {
				return nil, fmt.Errorf("unsupported directive %s", fields[0])
			}
			if len(blocks) == 0 {
				return nil, fmt.Errorf("cover row %q outside a .names block", line)
			}
			blocks[len(blocks)-1].rows = append(blocks[len(blocks)-1].rows, line)
		}
	}

	// Create objects in declaration order so identifiers are deterministic:
	// primary inputs, then logic nodes, then primary outputs
	for _, in := range inputs {
		if _, exists := nodeMap[in]; exists {
			return nil, fmt.Errorf("signal %s declared twice", in)
		}
		nodeMap[in] = ntk.CreatePI(in)
	}
	for _, block := range blocks {
		if _, exists := nodeMap[block.output]; exists {
			return nil, fmt.Errorf("signal %s driven twice", block.output)
		}
		node := ntk.CreateNode()
		node.Name = block.output
		nodeMap[block.output] = node
	}

	// Second pass: wire fanins and install covers, now that forward
	// references resolve
	for _, block := range blocks {
		node := nodeMap[block.output]
		for _, in := range block.inputs {
			fanin, exists := nodeMap[in]
			if !exists {
				return nil, fmt.Errorf("signal %s of node %s is not driven", in, block.output)
			}
			node.AddFanin(fanin)
		}
		cover, err := parseCoverRows(block)
		if err != nil {
			return nil, err
		}
		node.SetCover(cover)
	}

	for _, out := range outputs {
		driver, exists := nodeMap[out]
		if !exists {
			return nil, fmt.Errorf("output signal %s is not driven", out)
		}
		ntk.CreatePO(out, driver)
	}

	return ntk, nil
}

// parseCoverRows builds the node's cover from its .names rows. Only on-set
// rows are supported; a block with no rows is the constant-zero function.
func parseCoverRows(block *namesBlock) (*sop.Cover, error) {
	nVars := len(block.inputs)
	cover := sop.NewCover(nVars)
	for _, row := range block.rows {
		fields := strings.Fields(row)
		plane, out := "", ""
		switch {
		case nVars == 0 && len(fields) == 1:
			out = fields[0]
		case nVars > 0 && len(fields) == 2:
			plane, out = fields[0], fields[1]
		default:
			return nil, fmt.Errorf("malformed cover row %q for node %s", row, block.output)
		}
		if out != "1" {
			return nil, fmt.Errorf("off-set cover row %q for node %s is not supported", row, block.output)
		}
		cube, err := sop.ParseCube(nVars, plane)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", block.output, err)
		}
		if err := cover.AddCube(cube); err != nil {
			return nil, fmt.Errorf("node %s: %w", block.output, err)
		}
	}
	return cover, nil
}

// readLogicalLines returns the file's non-comment lines with backslash
// continuations joined
func readLogicalLines(file *os.File) ([]string, error) {
	var lines []string
	var pending string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if strings.HasSuffix(line, "\\") {
			pending += strings.TrimSuffix(line, "\\") + " "
			continue
		}
		line = pending + line
		pending = ""
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

// WriteBlifFile writes the network in BLIF format
func WriteBlifFile(filename string, ntk *network.Network) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	fmt.Fprintf(writer, ".model %s\n", ntk.Name)

	writer.WriteString(".inputs")
	for _, pi := range ntk.PIs {
		fmt.Fprintf(writer, " %s", pi.Name)
	}
	writer.WriteString("\n.outputs")
	for _, po := range ntk.POs {
		fmt.Fprintf(writer, " %s", po.Fanins[0].Node.Name)
	}
	writer.WriteString("\n")

	ntk.ForEachNode(func(node *network.Node) {
		writer.WriteString(".names")
		for _, f := range node.Fanins {
			fmt.Fprintf(writer, " %s", f.Node.Name)
		}
		fmt.Fprintf(writer, " %s\n", node.Name)
		for _, cube := range node.Cover.Cubes {
			if len(cube) == 0 {
				writer.WriteString("1\n")
				continue
			}
			for _, l := range cube {
				writer.WriteString(l.String())
			}
			writer.WriteString(" 1\n")
		}
	})

	writer.WriteString(".end\n")
	return nil
}
