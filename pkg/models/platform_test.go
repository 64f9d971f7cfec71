package models

import "testing"

func TestParsePlatformKey_Main(t *testing.T) {
	k := ParsePlatformKey("main")
	if k.Kind != PlatformMain {
		t.Fatalf("kind = %v, want PlatformMain", k.Kind)
	}
	if k.String() != "main" {
		t.Errorf("String() = %q", k.String())
	}
}

func TestParsePlatformKey_Hosting(t *testing.T) {
	k := ParsePlatformKey("hosting-aws")
	if k.Kind != PlatformHosting || k.Provider != "aws" {
		t.Fatalf("got %+v, want hosting/aws", k)
	}
	// Provider keeps its own hyphens: only the "hosting-" prefix is stripped.
	k = ParsePlatformKey("hosting-digital-ocean")
	if k.Provider != "digital-ocean" {
		t.Errorf("Provider = %q, want digital-ocean", k.Provider)
	}
	if k.String() != "hosting-digital-ocean" {
		t.Errorf("String() = %q", k.String())
	}
}

func TestParsePlatformKey_Access(t *testing.T) {
	k := ParsePlatformKey("ftp-server1")
	if k.Kind != PlatformAccess || k.AccessType != "ftp" || k.AccessName != "server1" {
		t.Fatalf("got %+v", k)
	}
	if k.String() != "ftp-server1" {
		t.Errorf("String() = %q", k.String())
	}
}

func TestParsePlatformKey_HyphenatedNameTruncates(t *testing.T) {
	// "email-backup-2" splits on the FIRST hyphen; the name keeps the rest.
	k := ParsePlatformKey("email-backup-2")
	if k.AccessType != "email" || k.AccessName != "backup-2" {
		t.Fatalf("got type=%q name=%q", k.AccessType, k.AccessName)
	}

	// The lossy case: an access entry whose NAME contains the written key's
	// separator cannot be distinguished after encoding. Encoding type "other"
	// with name "email-backup" then parsing yields type "other", but encoding a
	// type that is itself a prefix of the name collapses.
	enc := AccessKey("email", "backup-2").String()
	back := ParsePlatformKey(enc)
	if back.AccessType != "email" || back.AccessName != "backup-2" {
		t.Errorf("round trip gave type=%q name=%q", back.AccessType, back.AccessName)
	}
}

func TestParsePlatformKey_NoHyphen(t *testing.T) {
	k := ParsePlatformKey("legacy")
	if k.Kind != PlatformAccess || k.AccessType != "legacy" || k.AccessName != "" {
		t.Fatalf("got %+v", k)
	}
}

func TestKnownAccessType(t *testing.T) {
	for _, typ := range []AccessType{AccessEmail, AccessFTP, AccessSSH, AccessCMS, AccessOther} {
		if !KnownAccessType(typ) {
			t.Errorf("KnownAccessType(%q) = false", typ)
		}
	}
	if KnownAccessType("vpn") {
		t.Error("KnownAccessType(vpn) = true, want false")
	}
}
