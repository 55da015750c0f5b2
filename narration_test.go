package mathify

import "testing"

// TestNarration_ParenBeforeLetter 测试场景 E：字母紧贴 ( 补空格
func TestNarration_ParenBeforeLetter(t *testing.T) {
	got := NormalizeNarration("f(x)=x^2")
	if got != "f (x)=x^2" {
		t.Errorf("NormalizeNarration(\"f(x)=x^2\") = %q, want \"f (x)=x^2\"", got)
	}
}

// TestNarration_CaseBoundary 小写紧跟大写补空格
func TestNarration_CaseBoundary(t *testing.T) {
	got := NormalizeNarration("the answerIs twelve")
	if got != "the answer Is twelve" {
		t.Errorf("NormalizeNarration() = %q, want \"the answer Is twelve\"", got)
	}
}

// TestNarration_AfterPunctuation 标点后紧跟字母补空格
func TestNarration_AfterPunctuation(t *testing.T) {
	got := NormalizeNarration("First,solve for x.Then substitute back.")
	want := "First, solve for x. Then substitute back."
	if got != want {
		t.Errorf("NormalizeNarration() = %q, want %q", got, want)
	}
}

// TestNarration_DecimalUntouched 小数点后是数字不是字母，不补空格
func TestNarration_DecimalUntouched(t *testing.T) {
	got := NormalizeNarration("pi is about 3.14159 here")
	if got != "pi is about 3.14159 here" {
		t.Errorf("NormalizeNarration() = %q, decimals must stay intact", got)
	}
}

// TestNarration_CloseParen ) 后紧跟字母补空格
func TestNarration_CloseParen(t *testing.T) {
	got := NormalizeNarration("g(x)and more")
	if got != "g (x) and more" {
		t.Errorf("NormalizeNarration() = %q, want \"g (x) and more\"", got)
	}
}

// TestNarration_CollapseWhitespace 连续空白折叠并去首尾
func TestNarration_CollapseWhitespace(t *testing.T) {
	got := NormalizeNarration("  too   many \t spaces \n here  ")
	if got != "too many spaces here" {
		t.Errorf("NormalizeNarration() = %q, want \"too many spaces here\"", got)
	}
}

// TestNarration_Empty 空输入原样返回
func TestNarration_Empty(t *testing.T) {
	if got := NormalizeNarration(""); got != "" {
		t.Errorf("NormalizeNarration(\"\") = %q, want \"\"", got)
	}
}

// TestNarration_Unicode 非 ASCII 字母同样适用
func TestNarration_Unicode(t *testing.T) {
	got := NormalizeNarration("α(β)")
	if got != "α (β)" {
		t.Errorf("NormalizeNarration(\"α(β)\") = %q, want \"α (β)\"", got)
	}
}

// TestNarration_Idempotent 幂等：归一化结果再归一化不变
func TestNarration_Idempotent(t *testing.T) {
	inputs := []string{
		"f(x)=x^2",
		"the answerIs twelve",
		"First,solve for x.Then substitute back.",
		"g(x)and more",
		"  too   many    spaces  ",
		"already normalized text.",
		"mixedCase,then(parens)next",
		"",
	}
	for _, input := range inputs {
		once := NormalizeNarration(input)
		twice := NormalizeNarration(once)
		if once != twice {
			t.Errorf("not idempotent for %q: once=%q twice=%q", input, once, twice)
		}
	}
}
