// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package cg

// PMS8/PMS16 are referenced throughout the reference CG dispatcher
// (pms8_checkfmt, pms_get_metrics, pms_extract, pms_extract_mask) but
// this module's source corpus does not include pms.c or pms.h, so
// neither the signature check nor the decoder has anything to port
// from. Rather than guess at an unconfirmed magic and silently
// misclassify other formats, the checks below always report no match;
// TypePMS8/TypePMS16 remain defined (cg.go's GetMetrics/Load switches
// handle them) for API completeness and to document the gap rather
// than hide it.

func pms8CheckFormat(data []byte) bool  { return false }
func pms16CheckFormat(data []byte) bool { return false }
