/*
	frame scheduler

	A System is a single purpose function that is updated once per frame.
	The Engine runs its Systems in order of priority, lower first:

		control -> animation -> render -> stats -> present
*/
package system
