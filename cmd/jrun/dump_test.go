package main

import (
	"testing"

	"github.com/signadot/jsontree/parse"
)

func TestDumpTree(t *testing.T) {
	root, err := parse.ParseString(`{"b":[1,"x"],"a":true,"n":null}`)
	if err != nil {
		t.Fatal(err)
	}
	want := `.={}
.a=true
.b=[]
.b[0]=1
.b[1]="x"
.n=null
`
	if got := dumpTree(root); got != want {
		t.Errorf("dumpTree = %q, want %q", got, want)
	}
}
