// Package present produces the HTML presentation page.
//
// A presentation template is an ordinary HTML document containing the
// marker line
//
//	// DIAGRAM_DATA_PLACEHOLDER
//
// inside a <script> element. [Render] replaces the marker with the output of
// [figure.Embed], keeping the marker's indentation on every inserted line.
// [DefaultTemplate] is a multi-tab page that loads plotly.js from its CDN.
package present
