package areal

import (
	"math"
	"strings"
	"testing"
)

const csv1 = `county,y,E,x,adj
alpha,5,4.2,0.1,"[2,3]"
beta,0,1.5,-0.3,"[1,3]"
gamma,12,9.9,0.7,"[1,2]"
`

func TestReadCSV(tst *testing.T) {
	d, err := ReadCSV(strings.NewReader(csv1), DefaultColumns())
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if d.N() != 3 {
		tst.Fatalf("Expected 3 areas, got %d", d.N())
	}
	if d.Areas[0].Y != 5 || d.Areas[1].Y != 0 || d.Areas[2].Y != 12 {
		tst.Errorf("Unexpected counts: %v", d.Counts())
	}
	if d.Areas[2].X != 0.7 {
		tst.Errorf("Unexpected covariate: %v", d.Areas[2].X)
	}
	// fully connected triangle: 6 directed edges
	if d.Graph.NEdges() != 6 {
		tst.Errorf("Expected 6 directed edges, got %d", d.Graph.NEdges())
	}
	le := d.LogOffsets()
	if math.Abs(le[0]-math.Log(4.2)) > 1e-12 {
		tst.Errorf("Unexpected log offset: %v", le[0])
	}
}

func TestReadCSVMissingColumn(tst *testing.T) {
	_, err := ReadCSV(strings.NewReader("a,b\n1,2\n"), DefaultColumns())
	if err == nil {
		tst.Error("Expected error for missing columns")
	}
}

func TestReadCSVBadCounts(tst *testing.T) {
	in := "y,E,x,adj\n-1,1.0,0.0,\"[2]\"\n3,1.0,0.0,\"[1]\"\n"
	if _, err := ReadCSV(strings.NewReader(in), DefaultColumns()); err == nil {
		tst.Error("Expected error for negative count")
	}
	in = "y,E,x,adj\n1.5,1.0,0.0,\"[2]\"\n3,1.0,0.0,\"[1]\"\n"
	if _, err := ReadCSV(strings.NewReader(in), DefaultColumns()); err == nil {
		tst.Error("Expected error for non-integer count")
	}
	in = "y,E,x,adj\n1,0.0,0.0,\"[2]\"\n3,1.0,0.0,\"[1]\"\n"
	if _, err := ReadCSV(strings.NewReader(in), DefaultColumns()); err == nil {
		tst.Error("Expected error for non-positive expected count")
	}
}

func TestReadCSVMalformedNeighbors(tst *testing.T) {
	in := "y,E,x,adj\n1,1.0,0.0,\"[2\"\n3,1.0,0.0,\"[1]\"\n"
	if _, err := ReadCSV(strings.NewReader(in), DefaultColumns()); err == nil {
		tst.Error("Expected parse error, not silent empty neighbor list")
	}
}

func TestReadCSVFloatCount(tst *testing.T) {
	in := "y,E,x,adj\n4.0,1.0,0.0,\"[2]\"\n3,1.0,0.0,\"[1]\"\n"
	d, err := ReadCSV(strings.NewReader(in), DefaultColumns())
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if d.Areas[0].Y != 4 {
		tst.Errorf("Expected count 4, got %d", d.Areas[0].Y)
	}
}
