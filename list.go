// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dill

// clauseList is an intrusive FIFO queue of *clause values: the link
// pointers live directly on clause (prev/next), so queuing a clause
// never allocates. pushBack/erase/empty/front are all O(1).
type clauseList struct {
	head, tail *clause
}

func (l *clauseList) empty() bool { return l.head == nil }

func (l *clauseList) front() *clause { return l.head }

// pushBack links c at the tail of l. c must not already be linked.
func (l *clauseList) pushBack(c *clause) {
	c.owner = l
	c.prev = l.tail
	c.next = nil
	if l.tail != nil {
		l.tail.next = c
	} else {
		l.head = c
	}
	l.tail = c
	c.linked = true
}

// erase unlinks c from l. c must currently be linked in l.
func (l *clauseList) erase(c *clause) {
	if c.prev != nil {
		c.prev.next = c.next
	} else {
		l.head = c.next
	}
	if c.next != nil {
		c.next.prev = c.prev
	} else {
		l.tail = c.prev
	}
	c.prev, c.next, c.owner = nil, nil, nil
	c.linked = false
}
