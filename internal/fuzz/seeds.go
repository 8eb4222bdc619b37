package fuzztests

import (
	"testing"
)

const maxFuzzInput = 1 << 16 // 64 KiB

// formatSeeds are inputs with known fixed points.
var formatSeeds = []string{
	"",
	"var x = {\na:1,\nb:2};",
	"var o = {a:{b:1}};",
	"foo();bar();",
	"x = new Foo(a,b);",
	"var a=1,b=2;",
	"a+b*c;",
	"a&&b||c;",
	"function f(){ return 1; }",
	"function f(a,b){}",
	"var f = function(a){return a;};",
	"if(a){x()}else if(b){y()}",
	"if(a)\nb();",
	"if(a)b();else c();",
	"foo({a:1, b:2});",
	"while(a){b();}",
	"foo(); // x\nbar();",
	"function f(){\n// c\nreturn 1;\n}",
	"{",
}

// lexerSeeds add lexical corner cases: regex vs division, ASI-sensitive line
// breaks, non-ASCII identifiers, lexical errors.
var lexerSeeds = []string{
	"/* block */\nvar re = /ab+c/g, d = a / b;",
	"a = b\n-c",
	"for (var i = 0; i < 10; i++) { s += i; }",
	"'unterminated",
	"var été = 1;",
	"a # b",
	"\ufeffvar crlf = 1;\r\n",
}

func addCorpusSeeds(f *testing.F) {
	addFormatSeeds(f)
	for _, src := range lexerSeeds {
		f.Add([]byte(src))
	}
}

func addFormatSeeds(f *testing.F) {
	for _, src := range formatSeeds {
		f.Add([]byte(src))
	}
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
