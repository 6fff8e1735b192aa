// Package widgets provides leaf components for realm programs: a bordered
// Paragraph and a ProgressBar gauge. Widgets implement View and attribute
// access; hosts embed them in their own components to supply On.
package widgets
