// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package bitvec

import (
	"slices"
	"testing"
	"unsafe"
)

func TestNbit(t *testing.T) {
	for _, x := range [...][2]int{
		{int(unsafe.Sizeof(uint(0))) * 8, (&V[uint]{}).nbit()},
		{int(unsafe.Sizeof(uint8(0))) * 8, (&V[uint8]{}).nbit()},
		{int(unsafe.Sizeof(uint16(0))) * 8, (&V[uint16]{}).nbit()},
		{int(unsafe.Sizeof(uint32(0))) * 8, (&V[uint32]{}).nbit()},
		{int(unsafe.Sizeof(uint64(0))) * 8, (&V[uint64]{}).nbit()},
		{int(unsafe.Sizeof(uintptr(0))) * 8, (&V[uintptr]{}).nbit()},
	} {
		if x[0] != x[1] {
			t.Fatalf("V[T].nbit:\nhave %d\nwant %d", x[0], x[1])
		}
	}
}

func TestZero(t *testing.T) {
	var v16 V[uint16]
	if v16.s != nil {
		t.Fatalf("v16.s:\nhave %d\nwant nil", v16.s)
	}
	if n := v16.Len(); n != 0 {
		t.Fatalf("v16.Len:\nhave %d\nwant 0", n)
	}
	if n := v16.Count(); n != 0 {
		t.Fatalf("v16.Count:\nhave %d\nwant 0", n)
	}
	if v16.IsSet(0) {
		t.Fatal("v16.IsSet: out of range index should be unset")
	}
}

func TestReset(t *testing.T) {
	var v32 V[uint32]
	for _, x := range [...]struct {
		n, wantLen int
	}{
		{1, 32},
		{32, 32},
		{33, 64},
		{0, 0},
		{100, 128},
		{17, 32},
	} {
		v32.Reset(x.n)
		if n := v32.Len(); n != x.wantLen {
			t.Fatalf("v32.Reset(%d): Len:\nhave %d\nwant %d", x.n, n, x.wantLen)
		}
		if n := v32.Count(); n != 0 {
			t.Fatalf("v32.Reset(%d): Count:\nhave %d\nwant 0", x.n, n)
		}
		for i, x := range v32.s {
			if x != 0 {
				t.Fatalf("v32.s[%d]:\nhave %d\nwant 0", i, x)
			}
		}
		if x.n > 0 {
			v32.Set(x.n - 1)
		}
	}
}

func TestSetUnset(t *testing.T) {
	var v8 V[uint8]
	v8.Reset(20)
	for _, i := range [...]int{0, 3, 7, 8, 19} {
		v8.Set(i)
		if !v8.IsSet(i) {
			t.Fatalf("v8.Set(%d): IsSet should be true", i)
		}
	}
	v8.Set(3)
	if n := v8.Count(); n != 5 {
		t.Fatalf("v8.Count:\nhave %d\nwant 5", n)
	}
	v8.Unset(7)
	v8.Unset(6)
	if v8.IsSet(7) {
		t.Fatal("v8.Unset(7): IsSet should be false")
	}
	if n := v8.Count(); n != 4 {
		t.Fatalf("v8.Count:\nhave %d\nwant 4", n)
	}
	v8.Clear()
	if n := v8.Count(); n != 0 {
		t.Fatalf("v8.Clear: Count:\nhave %d\nwant 0", n)
	}
	for i := range v8.Len() {
		if v8.IsSet(i) {
			t.Fatalf("v8.Clear: bit %d should be unset", i)
		}
	}
}

func TestOnes(t *testing.T) {
	var v64 V[uint64]
	v64.Reset(200)
	want := []int{1, 2, 63, 64, 130, 199}
	for _, i := range want {
		v64.Set(i)
	}
	if have := slices.Collect(v64.Ones()); !slices.Equal(have, want) {
		t.Fatalf("v64.Ones:\nhave %v\nwant %v", have, want)
	}
	var n int
	for range v64.Ones() {
		if n++; n == 3 {
			break
		}
	}
	if n != 3 {
		t.Fatalf("v64.Ones: break:\nhave %d\nwant 3", n)
	}
}
