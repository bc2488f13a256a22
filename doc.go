/*
Package wcwidth computes fixed-pitch display widths of Unicode code points.

Description

Terminal emulators, text-based UIs and tools which align monospaced output
need to know how many columns ("cells") a character occupies on screen.
For ASCII this is trivial, but the general question is surprisingly
muddy: combining marks occupy no cell at all, East Asian ideographs and
many emoji occupy two, control characters are not printable in any
meaningful sense, and a whole class of "ambiguous" characters occupies
one cell in Western contexts but two on legacy CJK terminals.

This package answers the question in the tradition of POSIX wcwidth(3)
and wcswidth(3): every code point is mapped to one of the widths

   -1   not printable (control characters, undecodable input)
    0   occupies no column (combining marks, format controls)
    1   narrow, one column
    2   wide, two columns

Classification follows the well-known reference algorithm for wcwidth,
including its glibc-style carve-outs, extended with the East_Asian_Width
wide and fullwidth properties so that modern additions such as emoji
presentations classify as two cells.

Typical Usage

Widths of single code points and of strings are computed with

   wcwidth.Width('好')            // => 2
   wcwidth.StringWidth("hi 😊")   // => 5

For legacy CJK environments, where East-Asian-Ambiguous characters
render as full-width, use the EastAsian policy:

   wcwidth.WidthCJK('°')                  // => 2
   wcwidth.EastAsian.StringWidth("°C")    // => 3

A policy matching the user's environment may be obtained with
PolicyFromEnvironment.

All classification tables are built once, on first use, from compact
generated property tables, and are immutable afterwards. Classification
is a pure function of the code point and the policy: it never blocks,
never allocates and is safe for concurrent use without locking.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package wcwidth

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
