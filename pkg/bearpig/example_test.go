package bearpig_test

import (
	"fmt"

	"github.com/KromDaniel/bearpig/pkg/bearpig"
)

func ExampleCompile() {
	re, err := bearpig.Compile("[a-z]+@[a-z]+")
	if err != nil {
		panic(err)
	}
	fmt.Println(re.MatchString("bob@example"))
	fmt.Println(re.FindFirst("mail bob@example now").Text)
	// Output:
	// true
	// bob@example
}

func ExampleRegex_FindAll() {
	re := bearpig.MustCompile("[0-9]+")
	for _, m := range re.FindAll("a1 b22 c333") {
		fmt.Println(m.Start, m.Text)
	}
	// Output:
	// 1 1
	// 4 22
	// 8 333
}

func ExampleRegex_ReplaceAll() {
	re := bearpig.MustCompile("[0-9]+")
	out, err := re.ReplaceAll("call 555 now", "<$0>")
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output: call <555> now
}

func ExampleParse() {
	tokens, _ := bearpig.Tokenize("a(b")
	_, err := bearpig.Parse(tokens)
	fmt.Println(err)
	// Output: failed to parse pattern: unexpected end of input at 3 in parseGroup: expected: PAREN_CLOSE
}
