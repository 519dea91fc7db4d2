package database

import (
	"testing"

	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/apptype"
)

// FuzzFriendshipSymmetry drives SetFriends/RemoveFriends with random id pairs
// and checks both sides always agree.
func FuzzFriendshipSymmetry(f *testing.F) {
	f.Add([]byte{0, 1, 1, 2, 2, 0})
	f.Add([]byte{3, 3})
	f.Add([]byte{})
	f.Fuzz(func(t *testing.T, ops []byte) {
		db := New()
		for i := range 8 {
			_ = db.AddPerson(NewPerson(i, fmtName("p", i), apptype.Male))
		}
		for i := 0; i+1 < len(ops); i += 2 {
			a, b := int(ops[i]%10), int(ops[i+1]%10)
			if ops[i]&0x80 != 0 {
				_ = db.RemoveFriends(a, b)
			} else {
				_ = db.SetFriends(a, b)
			}
		}
		for _, p := range db.People() {
			for _, fid := range p.FriendIDs() {
				if fid == p.ID() {
					t.Fatalf("person %d is its own friend", fid)
				}
				q, err := db.PersonByID(fid)
				if err != nil {
					t.Fatalf("dangling friend %d: %v", fid, err)
				}
				if !db.HasFriend(q, p) {
					t.Fatalf("friendship %d->%d not mirrored", p.ID(), fid)
				}
			}
		}
	})
}
