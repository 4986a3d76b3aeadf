package hashing

import "testing"

func TestHash_KnownDigest(t *testing.T) {
	// sha256("test@example.com")
	const want = "973dfe463ec85785f5f95af5ba3906eedb2d931c24e69824a89ea65dba4e813b"
	if got := Hash("test@example.com"); got != want {
		t.Fatalf("Hash() = %s, want %s", got, want)
	}
}

func TestHash_NormalizesCaseAndWhitespace(t *testing.T) {
	inputs := []string{
		"test@example.com",
		"TEST@EXAMPLE.COM",
		"  Test@Example.com\t",
		"\ntest@example.COM ",
	}
	want := Hash(inputs[0])
	for _, in := range inputs[1:] {
		if got := Hash(in); got != want {
			t.Fatalf("Hash(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestHash_LowercaseHex(t *testing.T) {
	got := Hash("someone@example.com")
	if len(got) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(got))
	}
	for _, r := range got {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			t.Fatalf("digest contains non lowercase-hex char %q", r)
		}
	}
}

func TestHashPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "+1 (586) 800-2870", want: Hash("15868002870")},
		{in: "15868002870", want: Hash("15868002870")},
		{in: "586.800.2870", want: Hash("5868002870")},
		{in: "no digits", want: ""},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		if got := HashPhone(tt.in); got != tt.want {
			t.Fatalf("HashPhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHashEmail_Blank(t *testing.T) {
	if got := HashEmail("   "); got != "" {
		t.Fatalf("expected blank email to hash to empty string, got %q", got)
	}
	if got := HashEmail("A@B.co"); got != Hash("a@b.co") {
		t.Fatalf("unexpected digest %q", got)
	}
}

func TestDigitsOnly(t *testing.T) {
	if got := DigitsOnly("+44 (0)20-7946 0958"); got != "4402079460958" {
		t.Fatalf("unexpected digits %q", got)
	}
}
