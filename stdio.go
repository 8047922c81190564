// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package itebdd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"unsafe"

	"github.com/pkg/errors"
)

// Stats returns information about the Manager.
func (b *Manager) Stats() string {
	c := b.Counters()
	res := fmt.Sprintf("Varnum:     %d\n", c.Variables)
	res += fmt.Sprintf("Allocated:  %d\n", cap(b.nodes))
	res += fmt.Sprintf("Produced:   %d\n", c.Nodes)
	res += fmt.Sprintf("Size:       %s\n", humanSize(len(b.nodes), unsafe.Sizeof(node{})))
	res += "==============\n"
	res += c.String()
	return res
}

// humanSize returns a human-readable version of the size of b nodes of size s.
func humanSize(b int, s uintptr) string {
	bytes := b * int(s)
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// ************************************************************

// Print returns a one-line description of node n.
func (b *Manager) Print(n Node) string {
	switch {
	case n == bddzero:
		return "False"
	case n == bddone:
		return "True"
	case n < 0:
		return "Error"
	case int(n) >= len(b.nodes):
		return fmt.Sprintf("Error (%d not a valid handle)", n)
	}
	return fmt.Sprintf("(%d[%d] ? %d : %d)", n, b.nodes[n].index, b.nodes[n].high, b.nodes[n].low)
}

// PrintSet outputs a textual representation of the nodes reachable from n, one
// node per line, with the handle, the index, and the high and low successors.
func (b *Manager) PrintSet(w io.Writer, n Node) error {
	if err := b.checkptr(n); err != nil {
		return errors.Wrap(err, "in call to PrintSet")
	}
	if n < 2 {
		_, err := fmt.Fprintln(w, b.Print(n))
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 0, ' ', 0)
	if _, err := fmt.Fprintf(tw, "node: %d\n", n); err != nil {
		return err
	}
	err := b.Allnodes(func(id Node, index int, high, low Node) error {
		if id < 2 {
			return nil
		}
		_, err := fmt.Fprintf(tw, "%d\t[%d\t] ? \t%d\t : %d\n", id, index, high, low)
		return err
	}, n)
	if err != nil {
		return errors.Wrap(err, "in call to PrintSet")
	}
	return tw.Flush()
}

// ************************************************************

// WriteDot writes a GraphViz DOT description of the nodes reachable from roots,
// or of the whole arena if roots is absent, in a digraph called name. Nodes are
// labelled with their variable index; edges to the high branch are solid and
// edges to the low branch are dashed. WriteDot does not modify b, so it can be
// used concurrently from several goroutines once the construction of nodes is
// over.
func (b *Manager) WriteDot(w io.Writer, name string, roots ...Node) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %q {\n", name)
	fmt.Fprintln(bw, "0 [shape=box, label=\"0\", style=filled, height=0.3, width=0.3];")
	fmt.Fprintln(bw, "1 [shape=box, label=\"1\", style=filled, height=0.3, width=0.3];")
	err := b.Allnodes(func(id Node, index int, high, low Node) error {
		if id < 2 {
			return nil
		}
		fmt.Fprintf(bw, "%d [label=\"%d\"];\n", id, index)
		fmt.Fprintf(bw, "%d -> %d;\n", id, high)
		fmt.Fprintf(bw, "%d -> %d [style=dashed];\n", id, low)
		return nil
	}, roots...)
	if err != nil {
		return errors.Wrap(err, "in call to WriteDot")
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// FPrintDot is like WriteDot but outputs the result in a file. We use the
// standard output if filename is "-".
func (b *Manager) FPrintDot(filename string, name string, roots ...Node) error {
	if filename == "-" {
		return b.WriteDot(os.Stdout, name, roots...)
	}
	out, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "cannot create %s", filename)
	}
	if err := b.WriteDot(out, name, roots...); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
